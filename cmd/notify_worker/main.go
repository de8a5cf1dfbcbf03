package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MuhammadUmar248/clinic-backend/config"
	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
	"github.com/MuhammadUmar248/clinic-backend/pkg/mailer"
)

// notify_worker consumes registration email jobs published by the API and
// delivers them through Mailgun.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED is false, nothing to do")
		return
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
		logger.Fatal("mailgun is not configured")
	}

	mgn := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer ch.Close()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	q, err := ch.QueueDeclare(cfg.RabbitMQNotifyQueue, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to start consumer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		for d := range msgs {
			var job mailer.EmailJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				logger.WithError(err).Error("invalid email job payload, dropping")
				_ = d.Nack(false, false)
				continue
			}
			if err := mgn.Send(ctx, job.To, job.Subject, job.Text, job.HTML); err != nil {
				logger.WithError(err).WithField("to", job.To).Error("failed to send email, requeueing")
				_ = d.Nack(false, true)
				continue
			}
			logger.WithField("to", job.To).Info("email sent")
			_ = d.Ack(false)
		}
	}()

	logger.Infof("notify worker consuming from %s", q.Name)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("notify worker shutting down")
}

package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadUmar248/clinic-backend/config"
	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoDB     *mongo.Database
	redisClient *redis.Client

	jwtManager *helpers.JWTManager

	rabbitPub *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)  { cfg = c }
func GetConfig() *config.Config   { return cfg }
func SetLogger(l *logrus.Logger)  { logger = l }
func GetLogger() *logrus.Logger   { return logger }
func SetMongo(db *mongo.Database) { mongoDB = db }
func GetMongo() *mongo.Database   { return mongoDB }
func SetRedis(r *redis.Client)    { redisClient = r }
func GetRedis() *redis.Client     { return redisClient }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

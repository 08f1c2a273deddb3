package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/ic2hrmk/promtail"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	Name     string
	Config   *Config
	Logger   *logrus.Logger
	TGM      *tgbotapi.BotAPI
	DB       *sqlx.DB
	Mongo    *mongo.Client
	PromTail promtail.Client
	Metrics  *Metrics
	Fiber    *fiber.App
}

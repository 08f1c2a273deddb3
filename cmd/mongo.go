package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (a *App) initMongo() error {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(a.Config.Mongo.DSN()))
	if err != nil {
		return err
	}

	a.Mongo = client

	return nil
}

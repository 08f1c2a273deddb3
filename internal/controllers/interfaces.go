package controllers

import (
	"reconciliation/internal/repository/mongo/structs"
	"reconciliation/models"
)

//go:generate mockery --case=snake --name=TgmCtrl
//go:generate mockery --case=snake --name=MailboxCtrl

type TgmCtrl interface {
	Send(text string) error
}

type MailboxCtrl interface {
	Extract(profile *structs.MappingProfile) ([]models.Execution, error)
}

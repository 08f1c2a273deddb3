package mongo

import "reconciliation/internal/repository/mongo/structs"

//go:generate mockery --case=snake --name=MappingRepo

type MappingRepo interface {
	SetDefault() error
	Load(name string) (*structs.MappingProfile, error)
	Update(profile *structs.MappingProfile) error
}

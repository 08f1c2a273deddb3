package mongo

import (
	"context"

	"reconciliation/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultProfile is the header remap table for the standard broker contract
// note layout (headers as they arrive, trimmed and lowercased).
const DefaultProfile = "broker_xlsx"

type MappingRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewMappingRepository(conn *mongo.Client) *MappingRepository {
	collection := conn.Database("reconciliation").Collection("mapping_profiles")

	return &MappingRepository{conn: conn, collection: collection}
}

func (r *MappingRepository) SetDefault() error {
	profile := structs.MappingProfile{
		Name: DefaultProfile,
		Columns: []structs.ColumnRule{
			{Header: "instrument isin", Field: structs.FieldSymbol},
			{Header: "qty", Field: structs.FieldQuantity},
			{Header: "cost", Field: structs.FieldTradePrice},
			{Header: "net amount", Field: structs.FieldNetAmount},
			{Header: "brokerage amount", Field: structs.FieldBrokerageAmount},
			{Header: "stt", Field: structs.FieldSTT},
			{Header: "deal date", Field: structs.FieldTradeDate},
			{Header: "party code/sebi regn code of party", Field: structs.FieldBrokerID},
			{Header: "buy/sell flag", Field: structs.FieldBuySellFlag},
			{Header: "settlement date", Field: structs.FieldSettlementDate},
			{Header: "exchange code", Field: structs.FieldExchangeCode},
			{Header: "depository code", Field: structs.FieldDepositoryCode},
		},
	}

	check, err := r.Load(profile.Name)
	if err != nil && err != mongo.ErrNoDocuments {
		return err
	}

	if primitive.ObjectID.IsZero(check.ID) {
		if _, err := r.collection.InsertOne(context.TODO(), profile); err != nil {
			return err
		}
	}

	return nil
}

func (r *MappingRepository) Load(name string) (*structs.MappingProfile, error) {
	var result structs.MappingProfile

	if err := r.collection.FindOne(context.TODO(), bson.D{{Key: "name", Value: name}}).Decode(&result); err != nil {
		return &result, err
	}

	return &result, nil
}

func (r *MappingRepository) Update(profile *structs.MappingProfile) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "_id", Value: profile.ID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "columns", Value: profile.Columns}}}},
	)
	if err != nil {
		return err
	}

	return nil
}

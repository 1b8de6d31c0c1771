package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrBookingOverlap = errors.New("car is not available for the selected dates")
	ErrCarNotFound    = errors.New("car not found")
	ErrCarInUse       = errors.New("car has bookings")
	ErrUserNotFound   = errors.New("user not found")
	ErrStatusChanged  = errors.New("booking status changed concurrently")
)

type PostgresRepo struct {
	db *gorm.DB
}

func PostgresNewRepo(db *gorm.DB) *PostgresRepo {
	return &PostgresRepo{
		db: db,
	}
}

// translatePgError maps unique and exclusion violations raised by Postgres
// onto the repository sentinels. Anything else is returned unchanged.
// Foreign key violations depend on the statement and are mapped by callers.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if pgErr.ConstraintName == "idx_users_email" {
			return ErrDuplicateEmail
		}
	case pgerrcode.ExclusionViolation:
		return ErrBookingOverlap
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialised")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type mongoBooking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PatientName string             `bson:"patient_name"`
	Age         int                `bson:"age"`
	Sex         string             `bson:"sex"`
	BloodGroup  string             `bson:"blood_group"`
	HospitalID  string             `bson:"hospital_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (m *mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:          m.ID.Hex(),
		PatientName: m.PatientName,
		Age:         m.Age,
		Sex:         m.Sex,
		BloodGroup:  m.BloodGroup,
		HospitalID:  m.HospitalID,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// Create inserts a new booking document.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBooking{
		ID:          primitive.NewObjectID(),
		PatientName: booking.PatientName,
		Age:         booking.Age,
		Sex:         booking.Sex,
		BloodGroup:  booking.BloodGroup,
		HospitalID:  booking.HospitalID,
		CreatedAt:   booking.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) ListByHospital(ctx context.Context, hospitalID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"hospital_id": hospitalID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoBooking
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	out := make([]*domain.Booking, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *BookingRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "hospital_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	return err
}

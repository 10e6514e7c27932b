package schema_test

import (
	"context"
	"testing"

	"github.com/paintmart/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeSaleRecordedV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeSaleRecordedV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeSaleRecordedV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("IdentifierAndSubjectOpts", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.SaleRecordedSchemaTextV1,
		).Return(schemaID, nil)

		_, err := schema.NewSerdeSaleRecordedV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.SaleRecordedSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeSaleRecordedV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		saleValue1 := schema.SaleRecordedV1{
			SaleID:        42,
			CustomerName:  "testCustomer",
			CustomerEmail: "test@example.com",
			Currency:      "USD",
			TotalAmount:   99.55,
			Status:        "completed",
			Items: []schema.SaleItemV1{
				{
					ProductID:   7,
					ProductName: "testProduct",
					Quantity:    2,
					UnitPrice:   38.90,
					TotalPrice:  77.80,
				},
				{
					ProductID:   9,
					ProductName: "anotherProduct",
					Quantity:    1,
					UnitPrice:   21.75,
					TotalPrice:  21.75,
				},
			},
			RecordedAt: "2026-08-30T12:00:00Z",
		}

		encodedData, err := serde.Encode(saleValue1)
		require.NoError(t, err)

		var saleValue2 schema.SaleRecordedV1
		err = serde.Decode(encodedData, &saleValue2)
		require.NoError(t, err)

		assert.Equal(t, saleValue1.SaleID, saleValue2.SaleID)
		assert.Equal(t, saleValue1.CustomerName, saleValue2.CustomerName)
		assert.Equal(t, saleValue1.CustomerEmail, saleValue2.CustomerEmail)
		assert.Equal(t, saleValue1.Currency, saleValue2.Currency)
		assert.InDelta(t, saleValue1.TotalAmount, saleValue2.TotalAmount, 1e-9)
		assert.Equal(t, saleValue1.Status, saleValue2.Status)
		assert.Equal(t, saleValue1.RecordedAt, saleValue2.RecordedAt)

		require.Len(t, saleValue2.Items, len(saleValue1.Items))
		for i, v := range saleValue2.Items {
			assert.Equal(t, saleValue1.Items[i], v)
		}
	})
}

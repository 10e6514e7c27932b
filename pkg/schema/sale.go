package schema

const SaleRecordedSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "sale_recorded",
	"fields": [
		{"name": "sale_id", "type": "long"},
		{"name": "customer_name", "type": "string"},
		{"name": "customer_email", "type": "string"},
		{"name": "currency", "type": "string"},
		{"name": "total_amount", "type": "double"},
		{"name": "status", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "sale_item",
				"fields": [
					{"name": "product_id", "type": "long"},
					{"name": "product_name", "type": "string"},
					{"name": "quantity", "type": "int"},
					{"name": "unit_price", "type": "double"},
					{"name": "total_price", "type": "double"}
				]
			}
		}},
		{"name": "recorded_at", "type": "string"}
	]
}`

type (
	SaleRecordedV1 struct {
		SaleID        int64            `avro:"sale_id"`
		CustomerName  string           `avro:"customer_name"`
		CustomerEmail string           `avro:"customer_email"`
		Currency      string           `avro:"currency"`
		TotalAmount   float64          `avro:"total_amount"`
		Status        string           `avro:"status"`
		Items         []SaleItemV1     `avro:"items"`
		RecordedAt    string           `avro:"recorded_at"`
	}

	SaleItemV1 struct {
		ProductID   int64   `avro:"product_id"`
		ProductName string  `avro:"product_name"`
		Quantity    int     `avro:"quantity"`
		UnitPrice   float64 `avro:"unit_price"`
		TotalPrice  float64 `avro:"total_price"`
	}
)

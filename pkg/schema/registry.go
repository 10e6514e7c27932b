package schema

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/sr"
)

// Registry resolves schema ids through a confluent-compatible
// schema registry. Creating an already registered schema is
// idempotent and returns the existing id.
type Registry struct {
	cl *sr.Client
}

var _ SchemaIdentifier = Registry{}

func NewRegistry(cl *sr.Client) Registry {
	return Registry{cl}
}

func (r Registry) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (int, error) {
	const op = "Registry.DetermineID"

	ss, err := r.cl.CreateSchema(ctx, subject, sr.Schema{
		Schema: avroSchemaText,
		Type:   sr.TypeAvro,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return ss.ID, nil
}

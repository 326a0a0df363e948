package types

import (
	"crypto/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateTransactionNSU returns a random RFC 4122 identifier in the
// shape the payment provider uses for transaction_nsu.
func GenerateTransactionNSU() string {
	return uuid.NewString()
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

// initializeSID initializes the shortid generator once
func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortID returns a shortid, e.g. `6wtHnK2KA5` for invoice_slug.
// Ids from one process never repeat; they may contain '-' and '_'.
func GenerateShortID() string {
	once.Do(initializeSID)
	return sidGenerator.MustGenerate()
}

// orderNSULength matches the provider's order_nsu, e.g. `QA57J3UZ`
const orderNSULength = 8

// GenerateOrderNSU returns eight uppercase alphanumerics taken from the
// random half of a ulid, i.e. 40 bits of fresh entropy per call.
func GenerateOrderNSU() string {
	id := ulid.MustNew(ulid.Now(), rand.Reader).String()
	return id[len(id)-orderNSULength:]
}

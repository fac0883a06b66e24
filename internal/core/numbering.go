package core

import (
	"fmt"
	"math/rand"
	"time"
)

// Generated order/invoice numbers combine a millisecond timestamp with a
// small random suffix. Uniqueness is probabilistic; the database unique
// constraint is the backstop, and inserts retry with a fresh number on a
// rare clash.
const numberAttempts = 3

func generateNumber(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}

func generateOrderNumber() string   { return generateNumber("ORD") }
func generateInvoiceNumber() string { return generateNumber("INV") }

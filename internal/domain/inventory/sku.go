package inventory

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/blendworks/backend/internal/domain/shared"
)

const maxSKUAttempts = 5

// GenerateSKU derives a SKU candidate for a new inventory item: a 3-letter
// category prefix, the tail of the current unix-milli clock, and a random
// suffix. The value is not guaranteed unique; AllocateSKU checks it against
// the item register, and the catalog endpoint checks manual registrations
// against the custom SKU register.
func GenerateSKU(category string) string {
	prefix := skuPrefix(category)
	millis := time.Now().UnixMilli() % 1_000_000
	suffix := rand.Intn(1000)
	return fmt.Sprintf("%s-%06d-%03d", prefix, millis, suffix)
}

// AllocateSKU generates a SKU no existing item holds, retrying on the rare
// clash with an already issued value.
func AllocateSKU(ctx context.Context, items InventoryItemRepository, category string) (string, error) {
	for attempt := 0; attempt < maxSKUAttempts; attempt++ {
		candidate := GenerateSKU(category)

		_, err := items.FindBySKU(ctx, candidate)
		if err == nil {
			continue
		}
		if !shared.IsNotFound(err) {
			return "", err
		}
		return candidate, nil
	}
	return "", shared.NewDomainError("SKU_GENERATION_FAILED", "Could not generate a unique SKU")
}

func skuPrefix(category string) string {
	cleaned := make([]rune, 0, 3)
	for _, r := range category {
		if unicode.IsLetter(r) {
			cleaned = append(cleaned, unicode.ToUpper(r))
		}
		if len(cleaned) == 3 {
			break
		}
	}
	if len(cleaned) == 0 {
		return "GEN"
	}
	for len(cleaned) < 3 {
		cleaned = append(cleaned, 'X')
	}
	return strings.ToUpper(string(cleaned))
}

package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrUnsafeName    = errors.New("name contains reserved characters")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNoDurations   = errors.New("at least one duration is required")
)

// Names end up in stock file paths (<product>_<duration>.txt), so anything
// that could escape the stock directory is rejected here. Underscores are
// rejected too: they separate product from duration in the file name, so a
// name containing one would collide with a different pair's bucket.
func validateName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyName
	}
	if strings.ContainsAny(s, "/\\_\x00") || strings.Contains(s, "..") {
		return "", ErrUnsafeName
	}
	return s, nil
}

type ProductName struct {
	value string
}

func NewProductName(s string) (ProductName, error) {
	v, err := validateName(s)
	if err != nil {
		return ProductName{}, err
	}
	return ProductName{value: v}, nil
}

func (p ProductName) String() string { return p.value }

type DurationLabel struct {
	value string
}

func NewDurationLabel(s string) (DurationLabel, error) {
	v, err := validateName(s)
	if err != nil {
		return DurationLabel{}, err
	}
	return DurationLabel{value: v}, nil
}

func (d DurationLabel) String() string { return d.value }

// NewDurationList validates a full replacement list for a product, dropping
// duplicates while preserving insert order.
func NewDurationList(labels []string) ([]DurationLabel, error) {
	seen := make(map[string]struct{}, len(labels))
	out := make([]DurationLabel, 0, len(labels))
	for _, raw := range labels {
		label, err := NewDurationLabel(raw)
		if err != nil {
			if errors.Is(err, ErrEmptyName) {
				continue
			}
			return nil, err
		}
		if _, dup := seen[label.String()]; dup {
			continue
		}
		seen[label.String()] = struct{}{}
		out = append(out, label)
	}
	if len(out) == 0 {
		return nil, ErrNoDurations
	}
	return out, nil
}

type Price struct {
	value decimal.Decimal
}

func NewPrice(value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	return Price{value: value}, nil
}

func (p Price) Decimal() decimal.Decimal { return p.value }

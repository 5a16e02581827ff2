package filter

// Bucket names a range of a continuous value. Strength and bitterness options use buckets as their ids.
type Bucket string

const (
	Light  Bucket = "light"
	Medium Bucket = "medium"
	Strong Bucket = "strong"

	Low  Bucket = "low"
	High Bucket = "high"
)

const (
	lightMaxABV  = 5.0
	mediumMaxABV = 6.5

	lowMaxIBU    = 30
	mediumMaxIBU = 50
)

// StrengthOf buckets an ABV percentage: light below 5.0, medium up to and including 6.5, strong above.
func StrengthOf(abv float64) Bucket {
	switch {
	case abv < lightMaxABV:
		return Light
	case abv <= mediumMaxABV:
		return Medium
	default:
		return Strong
	}
}

// BitternessOf buckets an IBU value: low below 30, medium up to and including 50, high above.
// An unknown IBU counts as zero.
func BitternessOf(ibu *int64) Bucket {
	var value int64
	if ibu != nil {
		value = *ibu
	}

	switch {
	case value < lowMaxIBU:
		return Low
	case value <= mediumMaxIBU:
		return Medium
	default:
		return High
	}
}

// Buckets lists the option ids a bucketed category accepts, or nil when any id is accepted.
func (c Category) Buckets() []Bucket {
	switch c {
	case Strength:
		return []Bucket{Light, Medium, Strong}
	case Bitterness:
		return []Bucket{Low, Medium, High}
	default:
		return nil
	}
}

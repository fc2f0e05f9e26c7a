package entities

import (
	"strconv"
	"strings"
	"time"
)

// Brand represents a franchise listing in the marketplace
type Brand struct {
	ID              string          `json:"id" db:"id"`
	BrandName       string          `json:"brand_name" db:"brand_name"`
	Slug            string          `json:"slug" db:"slug"`
	Category        string          `json:"category" db:"category"`
	Industries      []string        `json:"industries" db:"-"`
	BusinessModels  []string        `json:"business_models" db:"-"`
	Tagline         string          `json:"tagline" db:"tagline"`
	Description     string          `json:"description" db:"description"`
	InvestmentRange InvestmentRange `json:"investment_range" db:"-"`
	FranchiseFee    float64         `json:"franchise_fee" db:"franchise_fee"`
	ROIPercent      float64         `json:"roi_percent" db:"roi_percent"`
	SpaceRequired   float64         `json:"space_required" db:"space_required"`
	Locations       []string        `json:"locations" db:"-"`
	Contact         Contact         `json:"contact" db:"-"`
	ViewCount       int             `json:"view_count" db:"view_count"`
	IsActive        bool            `json:"is_active" db:"is_active"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// InvestmentRange is the capital band a franchisee needs, in INR
type InvestmentRange struct {
	Min float64 `json:"min" db:"investment_min"`
	Max float64 `json:"max" db:"investment_max"`
}

// Contact holds brand contact details
type Contact struct {
	Email   string `json:"email" db:"email"`
	Phone   string `json:"phone" db:"phone"`
	Website string `json:"website" db:"website"`
}

// InvestmentValue returns the representative investment figure for
// bracketing and similarity comparisons: the range minimum when set,
// otherwise the maximum.
func (b *Brand) InvestmentValue() float64 {
	if b == nil {
		return 0
	}
	if b.InvestmentRange.Min > 0 {
		return b.InvestmentRange.Min
	}
	return b.InvestmentRange.Max
}

// FieldKind tags the shape of a resolved brand field.
type FieldKind int

const (
	// FieldAbsent marks a path that does not resolve on this brand.
	FieldAbsent FieldKind = iota
	// FieldScalar is a single text value.
	FieldScalar
	// FieldList is an ordered list of text values.
	FieldList
)

// FieldValue is the tagged scalar-or-list variant consumed by the field
// scorer. An absent value is a valid result, never an error.
type FieldValue struct {
	Kind   FieldKind
	Scalar string
	List   []string
}

// ScalarField wraps a single text value.
func ScalarField(s string) FieldValue {
	return FieldValue{Kind: FieldScalar, Scalar: s}
}

// ListField wraps a list of text values.
func ListField(vs []string) FieldValue {
	return FieldValue{Kind: FieldList, List: vs}
}

// AbsentField is the sentinel for an unresolvable path.
func AbsentField() FieldValue {
	return FieldValue{Kind: FieldAbsent}
}

// IsAbsent reports whether the value resolved to nothing.
func (v FieldValue) IsAbsent() bool {
	return v.Kind == FieldAbsent
}

// Field resolves a named, possibly dot-nested attribute of the brand
// into a FieldValue. Unknown paths resolve to the absent sentinel so
// callers can treat missing data uniformly.
func (b *Brand) Field(path string) FieldValue {
	if b == nil || path == "" {
		return AbsentField()
	}

	head, rest, _ := strings.Cut(path, ".")
	switch head {
	case "brandName":
		return ScalarField(b.BrandName)
	case "slug":
		return ScalarField(b.Slug)
	case "category":
		return ScalarField(b.Category)
	case "industries":
		return ListField(b.Industries)
	case "businessModels":
		return ListField(b.BusinessModels)
	case "tagline":
		return ScalarField(b.Tagline)
	case "description":
		return ScalarField(b.Description)
	case "locations":
		return ListField(b.Locations)
	case "franchiseFee":
		return numericField(b.FranchiseFee)
	case "roiPercent":
		return numericField(b.ROIPercent)
	case "spaceRequired":
		return numericField(b.SpaceRequired)
	case "investmentRange":
		return b.investmentField(rest)
	case "contact":
		return b.contactField(rest)
	}

	return AbsentField()
}

func (b *Brand) investmentField(rest string) FieldValue {
	switch rest {
	case "min":
		return numericField(b.InvestmentRange.Min)
	case "max":
		return numericField(b.InvestmentRange.Max)
	}
	return AbsentField()
}

func (b *Brand) contactField(rest string) FieldValue {
	switch rest {
	case "email":
		return ScalarField(b.Contact.Email)
	case "phone":
		return ScalarField(b.Contact.Phone)
	case "website":
		return ScalarField(b.Contact.Website)
	}
	return AbsentField()
}

func numericField(f float64) FieldValue {
	if f == 0 {
		return AbsentField()
	}
	return ScalarField(strconv.FormatFloat(f, 'f', -1, 64))
}

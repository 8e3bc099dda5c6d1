package repository

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort keys accepted by the product listing.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// DefaultProductLimit is the page size used when the client sends none.
const DefaultProductLimit = 12

// Reference is a polymorphic catalog reference: the client may send either
// an identifier or a display name. It is resolved into a canonical id once
// at the boundary and never re-sniffed downstream.
type Reference struct {
	ID   primitive.ObjectID
	Name string
	ByID bool
}

// ParseReference classifies a raw string as an id or a name. Mongo ObjectIDs
// are 24 hex characters; everything else is treated as a name.
func ParseReference(raw string) Reference {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil && len(raw) == 24 {
		return Reference{ID: oid, ByID: true}
	}
	return Reference{Name: raw}
}

// ListingParams are the raw query parameters of a product listing request.
type ListingParams struct {
	Page     string
	Limit    string
	Brand    string
	MinPrice string
	MaxPrice string
	Search   string
	Sort     string
	Gender   string
	LensType []string
	Shape    string
}

// ResolvedRefs carries the pre-resolved name-or-id references for a listing.
// A nil Brand or empty LensIDs means absent or unresolved; either way the
// corresponding clause is omitted from the filter.
type ResolvedRefs struct {
	Brand   *primitive.ObjectID
	LensIDs []primitive.ObjectID
}

// ListingQuery is the validated filter/sort/page triple a listing runs with.
type ListingQuery struct {
	Filter bson.M
	Sort   bson.D
	Page   int
	Limit  int
	Skip   int
}

// BuildListingQuery translates raw query parameters plus resolved references
// into the filter, sort key and page window. Pure: the same inputs always
// produce the same triple.
func BuildListingQuery(p ListingParams, refs ResolvedRefs) ListingQuery {
	filter := bson.M{}

	if refs.Brand != nil {
		filter["brand"] = *refs.Brand
	}
	if p.Gender != "" && p.Gender != "all" {
		filter["gender"] = p.Gender
	}
	if len(refs.LensIDs) > 0 {
		filter["lensType"] = bson.M{"$in": refs.LensIDs}
	}
	if p.Shape != "" {
		filter["shape"] = primitive.Regex{Pattern: regexp.QuoteMeta(p.Shape), Options: "i"}
	}

	price := bson.M{}
	if min, err := strconv.ParseFloat(p.MinPrice, 64); err == nil {
		price["$gte"] = min
	}
	if max, err := strconv.ParseFloat(p.MaxPrice, 64); err == nil {
		price["$lte"] = max
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if p.Search != "" {
		filter["$text"] = bson.M{"$search": p.Search}
	}

	var sort bson.D
	switch p.Sort {
	case SortPriceAsc:
		sort = bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		sort = bson.D{{Key: "price", Value: -1}}
	case SortRating:
		sort = bson.D{{Key: "rating", Value: -1}}
	default:
		// Unrecognized values fall back to newest.
		sort = bson.D{{Key: "createdAt", Value: -1}}
	}

	page, _ := strconv.Atoi(p.Page)
	if page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(p.Limit)
	if err != nil || limit < 1 {
		limit = DefaultProductLimit
	}
	if limit > 100 {
		limit = 100
	}

	return ListingQuery{
		Filter: filter,
		Sort:   sort,
		Page:   page,
		Limit:  limit,
		Skip:   (page - 1) * limit,
	}
}

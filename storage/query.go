package storage

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SearchFilter carries the optional constraints of a menu search. Zero-value
// string fields and nil bounds mean "not constrained".
type SearchFilter struct {
	Text        string
	Category    string
	SubCategory string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
}

// SearchResult is one flattened (restaurant × menu item) record.
type SearchResult struct {
	RestaurantName string  `json:"restaurantName" bson:"restaurantName"`
	ItemName       string  `json:"itemName" bson:"itemName"`
	Price          float64 `json:"price" bson:"price"`
	Category       string  `json:"category" bson:"category"`
	SubCategory    string  `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Image          string  `json:"image" bson:"image"`
	Rating         float64 `json:"rating" bson:"rating"`
}

// BuildMenuFilter translates a SearchFilter into a match document over the
// embedded menus array. Each constraint is added only when its parameter is
// present: free text becomes a case-insensitive substring match on the item
// name (the text is regex-quoted, so metacharacters match literally),
// category and sub-category are exact, price is a closed interval with
// either bound omittable, and rating is a lower bound.
func BuildMenuFilter(f SearchFilter) bson.M {
	query := bson.M{}
	if f.Text != "" {
		query["menus.itemName"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Text), Options: "i"}
	}
	if f.Category != "" {
		query["menus.category"] = f.Category
	}
	if f.SubCategory != "" {
		query["menus.subCategory"] = f.SubCategory
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["menus.price"] = price
	}
	if f.MinRating != nil {
		query["menus.rating"] = bson.M{"$gte": *f.MinRating}
	}
	return query
}

// BuildSearchPipeline produces the aggregation applied to the restaurants
// collection: narrow to restaurants with at least one matching item, unwind
// the menu, re-apply the same constraints per item, and project the
// flattened record shape.
func BuildSearchPipeline(f SearchFilter) mongo.Pipeline {
	match := BuildMenuFilter(f)
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$unwind", Value: "$menus"}},
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "restaurantName", Value: "$name"},
			{Key: "itemName", Value: "$menus.itemName"},
			{Key: "price", Value: "$menus.price"},
			{Key: "category", Value: "$menus.category"},
			{Key: "subCategory", Value: "$menus.subCategory"},
			{Key: "image", Value: "$menus.image"},
			{Key: "rating", Value: "$menus.rating"},
		}}},
	}
}

// CategoryTriple is one distinct (restaurant, category, sub-category)
// combination observed across all menu items.
type CategoryTriple struct {
	Restaurant  string `bson:"restaurant"`
	Category    string `bson:"category"`
	SubCategory string `bson:"subCategory"`
}

// BuildCategoryPipeline groups every menu item down to its distinct triple.
// The nesting into per-restaurant category trees happens in Go afterwards
// (BuildCategoryTree), not in the pipeline.
func BuildCategoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$menus"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "restaurant", Value: "$name"},
				{Key: "category", Value: "$menus.category"},
				{Key: "subCategory", Value: "$menus.subCategory"},
			}},
		}}},
	}
}

type CategoryEntry struct {
	Category      string   `json:"category"`
	SubCategories []string `json:"subCategories"`
}

type RestaurantCategories struct {
	RestaurantName string          `json:"restaurantName"`
	Categories     []CategoryEntry `json:"categories"`
}

// BuildCategoryTree nests distinct triples into one entry per restaurant.
// Sub-categories are de-duplicated within each category bucket, not across
// the whole restaurant. Empty sub-categories are dropped from the list.
// Order follows first appearance in the input.
func BuildCategoryTree(triples []CategoryTriple) []RestaurantCategories {
	var order []string
	restaurants := make(map[string]*restaurantAgg)

	for _, t := range triples {
		agg, ok := restaurants[t.Restaurant]
		if !ok {
			agg = &restaurantAgg{entries: make(map[string]*CategoryEntry)}
			restaurants[t.Restaurant] = agg
			order = append(order, t.Restaurant)
		}
		entry, ok := agg.entries[t.Category]
		if !ok {
			entry = &CategoryEntry{Category: t.Category}
			agg.entries[t.Category] = entry
			agg.catOrder = append(agg.catOrder, t.Category)
		}
		if t.SubCategory == "" {
			continue
		}
		if !containsString(entry.SubCategories, t.SubCategory) {
			entry.SubCategories = append(entry.SubCategories, t.SubCategory)
		}
	}

	out := make([]RestaurantCategories, 0, len(order))
	for _, name := range order {
		agg := restaurants[name]
		rc := RestaurantCategories{RestaurantName: name}
		for _, cat := range agg.catOrder {
			rc.Categories = append(rc.Categories, *agg.entries[cat])
		}
		out = append(out, rc)
	}
	return out
}

type restaurantAgg struct {
	catOrder []string
	entries  map[string]*CategoryEntry
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

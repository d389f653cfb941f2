package adRepo

import "go.mongodb.org/mongo-driver/bson"

// BuildPublicFilter translates a PublicQuery into a Mongo filter document.
//
// Visibility is recomputed against the expiry at query time: a stored
// isActive=true never makes an expired advertisement visible. The audience
// rule is inclusive: untargeted advertisements (absent, null or empty tag
// set) match every requested audience.
func BuildPublicFilter(q PublicQuery) bson.M {
	filter := bson.M{
		"isActive":            true,
		"subscriptionEndDate": bson.M{"$gte": q.Now},
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.SubCategory != "" {
		filter["subCategory"] = q.SubCategory
	}
	if q.Governorate != "" {
		filter["governorate"] = q.Governorate
	}
	if q.Audience != "" {
		filter["$or"] = []bson.M{
			{"audience": q.Audience},
			{"audience": bson.M{"$size": 0}},
			{"audience": nil},
		}
	}
	return filter
}

// publicSort orders by manual rank first, then recency, with the unique id
// as final tie-break so the ordering is a stable total order.
func publicSort() bson.D {
	return bson.D{
		{Key: "displayOrder", Value: -1},
		{Key: "createdAt", Value: -1},
		{Key: "id", Value: -1},
	}
}

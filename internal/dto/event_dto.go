package dto

// IndexDishMessage is the payload of the async dish indexing topic.
// Deleted set means drop the dish's index entries instead of reindexing.
type IndexDishMessage struct {
	DishId  string `json:"dish_id"`
	Deleted bool   `json:"deleted"`
}

package dto

// ChatRequest is the body of POST /chat. SessionId is optional; a missing
// or unknown id silently starts a fresh session.
type ChatRequest struct {
	RestaurantId string `json:"restaurant_id" validate:"required,uuid"`
	UserQuery    string `json:"user_query" validate:"required"`
	SessionId    string `json:"session_id" validate:"omitempty,uuid"`
}

type ChatResponse struct {
	SessionId    string           `json:"session_id"`
	Intent       string           `json:"intent"`
	Reply        string           `json:"reply"`
	ContextItems []ContextItemDTO `json:"context_items"`
	Cart         []CartEntryDTO   `json:"cart"`
	History      []TurnDTO        `json:"history"`
}

type ContextItemDTO struct {
	DishId      string  `json:"dish_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Calories    int     `json:"calories"`
	Category    string  `json:"category"`
	Tags        string  `json:"tags"`
	Ingredients string  `json:"ingredients"`
	ChefSpecial bool    `json:"chef_special"`
	ImageURL    string  `json:"image_url,omitempty"`
	VideoURL    string  `json:"video_url,omitempty"`
	Model3DURL  string  `json:"model_3d_url,omitempty"`
}

type CartEntryDTO struct {
	DishId string  `json:"dish_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}

type TurnDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Intent  string `json:"intent,omitempty"`
}

package model

import "encoding/json"

type MeliBuyer struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

type MeliOrderItem struct {
	Quantity int `json:"quantity"`
	Item     struct {
		ID string `json:"id"`
	} `json:"item"`
}

type MeliOrder struct {
	ID          json.Number     `json:"id"`
	Status      string          `json:"status"`
	TotalAmount float64         `json:"total_amount"`
	OrderItems  []MeliOrderItem `json:"order_items"`
	Buyer       MeliBuyer       `json:"buyer"`
}

type MeliOrderSearchResult struct {
	Results []MeliOrder `json:"results"`
}

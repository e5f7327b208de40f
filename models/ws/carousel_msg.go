package wsmodels

// CarouselMessage is pushed to the client on mount and on every index change.
type CarouselMessage struct {
	Carousel string `json:"carousel"`
	Index    int    `json:"index"`
	Size     int    `json:"size"`
}

// ClientMessage is accepted from the client: {"select": 2}.
type ClientMessage struct {
	Select *int `json:"select"`
}

type ErrorMessage struct {
	Carousel string `json:"carousel"`
	Error    string `json:"error"`
}

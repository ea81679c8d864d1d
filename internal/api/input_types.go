package api

type addPlantPayload struct {
	ProductID   uint   `json:"productId" form:"productId"`
	Nickname    string `json:"nickname" form:"nickname"`
	PlantedDate string `json:"plantedDate" form:"plantedDate"`
	Notes       string `json:"notes" form:"notes"`
}

type updatePlantPayload struct {
	UserPlantID    uint   `json:"userPlantId" form:"userPlantId"`
	Nickname       string `json:"nickname" form:"nickname"`
	LastWatered    string `json:"lastWatered" form:"lastWatered"`
	LastFertilized string `json:"lastFertilized" form:"lastFertilized"`
	Notes          string `json:"notes" form:"notes"`
	Status         string `json:"status" form:"status"`
}

type careDatePayload struct {
	Date string `json:"date" form:"date"`
}

type statusPayload struct {
	Status string `json:"status" form:"status"`
}

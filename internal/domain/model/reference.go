package model

type Brand struct {
	ID     int64         `json:"id"`
	Name   LocalizedText `json:"name"`
	Logo   string        `json:"logo"`
	Active bool          `json:"active"`
}

type CarModel struct {
	ID      int64         `json:"id"`
	BrandID int64         `json:"brand_id"`
	Name    LocalizedText `json:"name"`
	Active  bool          `json:"active"`
}

type Trim struct {
	ID      int64         `json:"id"`
	ModelID int64         `json:"model_id"`
	Name    LocalizedText `json:"name"`
	Active  bool          `json:"active"`
}

type Year struct {
	ID     int64         `json:"id"`
	Name   LocalizedText `json:"name"`
	Active bool          `json:"active"`
}

type Color struct {
	ID          int64         `json:"id"`
	BrandID     int64         `json:"brand_id"`
	Name        LocalizedText `json:"name"`
	ColorPicker string        `json:"color_picker"`
	Active      bool          `json:"active"`
}

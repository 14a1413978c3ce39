package models

// Customer is a shop client together with every measurement taken for them.
type Customer struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	LastVisit    string       `json:"lastVisit"`
	Notes        string       `json:"notes,omitempty"`
	Measurements Measurements `json:"measurements"`
}

func (c Customer) GetID() string { return c.ID }

// Measurements groups generic body measurements and the per-garment sets.
// Every group is a value, so a customer never carries a partially absent
// measurement record.
type Measurements struct {
	Body    BodyMeasurements    `json:"body"`
	Blouse  BlouseMeasurements  `json:"blouse"`
	Kurti   KurtiMeasurements   `json:"kurti"`
	Salwar  SalwarMeasurements  `json:"salwar"`
	Lehenga LehengaMeasurements `json:"lehenga"`
}

type BodyMeasurements struct {
	Chest       string `json:"chest"`
	Waist       string `json:"waist"`
	Hips        string `json:"hips"`
	Inseam      string `json:"inseam"`
	Sleeve      string `json:"sleeve"`
	Shoulder    string `json:"shoulder"`
	Neck        string `json:"neck"`
	ArmLength   string `json:"armLength"`
	Thigh       string `json:"thigh"`
	Calf        string `json:"calf"`
	TorsoLength string `json:"torsoLength"`
}

type BlouseMeasurements struct {
	Length       string `json:"length"`
	Bust         string `json:"bust"`
	Waist        string `json:"waist"`
	Shoulder     string `json:"shoulder"`
	SleeveLength string `json:"sleeveLength"`
	SleeveRound  string `json:"sleeveRound"`
	Armhole      string `json:"armhole"`
	FrontNeck    string `json:"frontNeck"`
	BackNeck     string `json:"backNeck"`
}

type KurtiMeasurements struct {
	Length       string `json:"length"`
	Bust         string `json:"bust"`
	Waist        string `json:"waist"`
	Hips         string `json:"hips"`
	Shoulder     string `json:"shoulder"`
	SleeveLength string `json:"sleeveLength"`
	Armhole      string `json:"armhole"`
	Neck         string `json:"neck"`
}

type SalwarMeasurements struct {
	Length string `json:"length"`
	Waist  string `json:"waist"`
	Hips   string `json:"hips"`
	Thigh  string `json:"thigh"`
	Knee   string `json:"knee"`
	Bottom string `json:"bottom"`
}

type LehengaMeasurements struct {
	Length string `json:"length"`
	Waist  string `json:"waist"`
	Hips   string `json:"hips"`
	Flare  string `json:"flare"`
}

package nationalize


// CountryGuess é o formato tipado que isola o resto do pipeline
// do wire format da API externa
type CountryGuess struct {
	CountryID   string
	Probability float64
}


type lookupResponse struct {
	Count   int    `json:"count"`
	Name    string `json:"name"`
	Country []struct {
		CountryID   string  `json:"country_id"`
		Probability float64 `json:"probability"`
	} `json:"country"`
}

package kommo


type createLeadResponse struct {
	Embedded struct {
		Leads []struct {
			ID int `json:"id"`
		} `json:"leads"`
	} `json:"_embedded"`
}

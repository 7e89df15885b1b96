package dto

type AddPropertyRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

func (r AddPropertyRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if len(r.Name) > 120 {
		errors["name"] = "Name must be at most 120 characters"
	}
	return errors
}

type ClonePropertyRequest struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
}

func (r ClonePropertyRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if len(r.Name) > 120 {
		errors["name"] = "Name must be at most 120 characters"
	}
	return errors
}

type SelectPropertyRequest struct {
	ID string `json:"id,omitempty"`
}

type PlaceSearchRequest struct {
	Query string
}

func (r PlaceSearchRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if len(r.Query) < 2 {
		errors["q"] = "Query must be at least 2 characters"
	}
	return errors
}

package intersight

import (
	"fmt"
)

// bulkTarget is a target entry of a bulk MoCloner or MoMerger request.
type bulkTarget struct {
	ObjectType   string `json:"ObjectType"`
	Moid         string `json:"Moid,omitempty"`
	Name         string `json:"Name,omitempty"`
	Organization *MoRef `json:"Organization,omitempty"`
}

// moClonerRequest copies the source objects into new target objects.
type moClonerRequest struct {
	Sources []MoRef      `json:"Sources"`
	Targets []bulkTarget `json:"Targets"`
}

// moMergerRequest merges the source objects into existing targets.
type moMergerRequest struct {
	Sources     []MoRef      `json:"Sources"`
	Targets     []bulkTarget `json:"Targets"`
	MergeAction string       `json:"MergeAction"`
}

// bulkResponse is the result document of a bulk operation.
type bulkResponse struct {
	Responses []bulkSubResponse `json:"Responses"`
}

type bulkSubResponse struct {
	Status int `json:"Status"`
	Body   struct {
		Moid    string `json:"Moid"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"Body"`
}

// err returns an error for the first failed sub-response, if any.
func (r *bulkResponse) err(operation string) error {
	for i, sub := range r.Responses {
		if sub.Status != 0 && (sub.Status < 200 || sub.Status >= 300) {
			return fmt.Errorf("%s response %d failed with status %d: %s %s",
				operation, i, sub.Status, sub.Body.Code, sub.Body.Message)
		}
	}
	return nil
}

// firstMoid returns the moid of the first sub-response.
func (r *bulkResponse) firstMoid(operation string) (string, error) {
	if err := r.err(operation); err != nil {
		return "", err
	}
	if len(r.Responses) == 0 {
		return "", fmt.Errorf("%s returned no responses", operation)
	}
	moid := r.Responses[0].Body.Moid
	if moid == "" {
		return "", fmt.Errorf("%s response has no moid", operation)
	}
	return moid, nil
}

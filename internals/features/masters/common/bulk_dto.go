package common

import (
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// UpdateStatusRequest is the body of every PUT /updateStatus endpoint.
type UpdateStatusRequest struct {
	IDs    []uint `json:"ids"`
	Status *int   `json:"status"`
}

var UpdateStatusRules = helper.Rules{
	"ids":    "required|array",
	"ids.*":  "numeric",
	"status": "required|numeric|in:0,1",
}

// DeleteRequest is the body of every PUT /delete endpoint.
type DeleteRequest struct {
	IDs []uint `json:"ids"`
}

var DeleteRules = helper.Rules{
	"ids":   "required|array",
	"ids.*": "numeric",
}

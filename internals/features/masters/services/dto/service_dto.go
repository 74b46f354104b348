package dto

import (
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type SaveServiceRequest struct {
	ID     *uint  `json:"id"`
	Name   string `json:"name"`
	Status *int   `json:"status"`
}

var SaveServiceRules = helper.Rules{
	"id":     "numeric",
	"name":   "required|string|minLength:2|maxLength:150",
	"status": "numeric|in:0,1",
}

type SaveSubServiceRequest struct {
	ID        *uint  `json:"id"`
	Name      string `json:"name"`
	ServiceID *uint  `json:"serviceId"`
	ClientIDs []uint `json:"clientIds"`
	Status    *int   `json:"status"`
}

var SaveSubServiceRules = helper.Rules{
	"id":          "numeric",
	"name":        "required|string|minLength:2|maxLength:150",
	"serviceId":   "required|numeric",
	"clientIds":   "array",
	"clientIds.*": "numeric",
	"status":      "numeric|in:0,1",
}

package dto

import (
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type SaveStateRequest struct {
	ID     *uint  `json:"id"`
	Name   string `json:"name"`
	Status *int   `json:"status"`
}

var SaveStateRules = helper.Rules{
	"id":     "numeric",
	"name":   "required|string|minLength:2|maxLength:100",
	"status": "numeric|in:0,1",
}

type SaveCityRequest struct {
	ID      *uint  `json:"id"`
	Name    string `json:"name"`
	StateID *uint  `json:"stateId"`
	Status  *int   `json:"status"`
}

var SaveCityRules = helper.Rules{
	"id":      "numeric",
	"name":    "required|string|minLength:2|maxLength:100",
	"stateId": "required|numeric",
	"status":  "numeric|in:0,1",
}

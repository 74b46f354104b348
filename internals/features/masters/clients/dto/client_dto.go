package dto

import (
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type SaveClientRequest struct {
	ID     *uint  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status *int   `json:"status"`
}

var SaveClientRules = helper.Rules{
	"id":     "numeric",
	"name":   "required|string|minLength:2|maxLength:150",
	"code":   "required|string|minLength:2|maxLength:50",
	"status": "numeric|in:0,1",
}

package dto

import (
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type SaveDispositionRequest struct {
	ID     *uint  `json:"id"`
	Name   string `json:"name"`
	TypeID *uint  `json:"typeId"`
	Status *int   `json:"status"`
}

var SaveDispositionRules = helper.Rules{
	"id":     "numeric",
	"name":   "required|string|minLength:2|maxLength:150",
	"typeId": "required|numeric",
	"status": "numeric|in:0,1",
}

type SaveActivityStatusRequest struct {
	ID     *uint  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status *int   `json:"status"`
}

var SaveActivityStatusRules = helper.Rules{
	"id":     "numeric",
	"name":   "required|string|minLength:2|maxLength:150",
	"code":   "required|string|minLength:2|maxLength:50",
	"status": "numeric|in:0,1",
}

type SaveCaseSubjectRequest struct {
	ID            *uint  `json:"id"`
	Name          string `json:"name"`
	DispositionID *uint  `json:"dispositionId"`
	Status        *int   `json:"status"`
}

var SaveCaseSubjectRules = helper.Rules{
	"id":            "numeric",
	"name":          "required|string|minLength:2|maxLength:255",
	"dispositionId": "numeric",
	"status":        "numeric|in:0,1",
}

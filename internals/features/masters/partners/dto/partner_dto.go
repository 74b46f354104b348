package dto

import (
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type SaveDealerRequest struct {
	ID            *uint   `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	GSTIN         *string `json:"gstin"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address"`
	ClientID      *uint   `json:"clientId"`
	StateID       *uint   `json:"stateId"`
	CityID        *uint   `json:"cityId"`
	DropDealerIDs []uint  `json:"dropDealerIds"`
	Status        *int    `json:"status"`
}

var SaveDealerRules = helper.Rules{
	"id":              "numeric",
	"name":            "required|string|minLength:3|maxLength:150",
	"code":            "required|string|minLength:2|maxLength:50",
	"gstin":           "string|minLength:15|maxLength:15",
	"email":           "required|email",
	"phone":           "required|phone",
	"address":         "string|maxLength:500",
	"clientId":        "required|numeric",
	"stateId":         "required|numeric",
	"cityId":          "required|numeric",
	"dropDealerIds":   "array",
	"dropDealerIds.*": "numeric",
	"status":          "numeric|in:0,1",
}

type SaveAspRequest struct {
	ID     *uint  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	CityID *uint  `json:"cityId"`
	Status *int   `json:"status"`
}

var SaveAspRules = helper.Rules{
	"id":     "numeric",
	"name":   "required|string|minLength:3|maxLength:150",
	"code":   "required|string|minLength:2|maxLength:50",
	"email":  "required|email",
	"phone":  "required|phone",
	"cityId": "required|numeric",
	"status": "numeric|in:0,1",
}

type SaveAspMechanicRequest struct {
	ID            *uint  `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	AspID         *uint  `json:"aspId"`
	CityID        *uint  `json:"cityId"`
	SubServiceIDs []uint `json:"subServiceIds"`
	Status        *int   `json:"status"`
}

var SaveAspMechanicRules = helper.Rules{
	"id":              "numeric",
	"name":            "required|string|minLength:3|maxLength:150",
	"phone":           "required|phone",
	"aspId":           "required|numeric",
	"cityId":          "required|numeric",
	"subServiceIds":   "array",
	"subServiceIds.*": "numeric",
	"status":          "numeric|in:0,1",
}

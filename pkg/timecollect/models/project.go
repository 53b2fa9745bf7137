package models

// Project maps a project code to its billing client.
type Project struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Client string `json:"client"`
}

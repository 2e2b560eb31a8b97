package model

import "strings"

type Driver struct {
	ID          int    `json:"driverId"`
	Forename    string `json:"forename"`
	Surname     string `json:"surname"`
	FullName    string `json:"fullName"`
	Nationality string `json:"nationality"`
}

// ComposeFullName builds the display name used throughout the dashboard
func ComposeFullName(forename, surname string) string {
	return strings.TrimSpace(forename + " " + surname)
}

type Constructor struct {
	ID   int    `json:"constructorId"`
	Name string `json:"name"`
}

type Status struct {
	ID     int    `json:"statusId"`
	Status string `json:"status"`
}

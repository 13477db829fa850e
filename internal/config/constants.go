package config

const (
	// Configuration file paths
	ConfigPathTickets = "configs/tickets.json"
)

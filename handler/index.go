package handler

import "event_agenda/config"

// Cfg is the agenda configuration value object handed to the filter engine
// and exporters. main loads it once at startup; nothing here re-reads the
// environment afterwards.
var Cfg config.AgendaConfig

func Init(cfg config.AgendaConfig) {
	Cfg = cfg
}

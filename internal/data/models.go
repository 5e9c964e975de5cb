package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")

type Models struct {
	ScoreLimits   ScoreLimitModel
	VenueMachines VenueMachineModel
	Aliases       AliasModel
	Teams         TeamModel
}

func NewModels(initDb *sql.DB) Models {
	return Models{
		ScoreLimits:   ScoreLimitModel{db: initDb},
		VenueMachines: VenueMachineModel{db: initDb},
		Aliases:       AliasModel{db: initDb},
		Teams:         TeamModel{db: initDb},
	}
}

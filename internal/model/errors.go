package model

import "errors"

// ErrCorruptReportStage marks a report whose flags claim a generated
// score without an uploaded audio, a combination no transition
// produces.
var ErrCorruptReportStage = errors.New("model: report marked generated without audio")

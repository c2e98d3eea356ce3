package reporting

import "errors"

var (
	// ErrNoReportAvailable indica que nenhum relatório foi gerado até o momento
	ErrNoReportAvailable = errors.New("nenhum relatório de performance disponível")
)

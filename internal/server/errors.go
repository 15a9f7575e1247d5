package server

import "errors"

var (
	errNoHTTPHandler = errors.New("server: http handler or listen address missing")
	errNothingToRun  = errors.New("server: http server was not created")
)

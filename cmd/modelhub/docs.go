package main

// General API documentation for swaggo. Run `make swagger-gen` to regenerate
// internal/httpapi/apidocs.
//
// @title           modelhub API
// @version         1.0
// @description     Model registry and dispatch service for chat and summarization models.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http

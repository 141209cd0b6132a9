package server

//go:generate swag init -g internal/server/server.go -o docs

// @title Pashumitra API
// @version 1.0
// @description Farm animal disease prediction with bilingual (English/Telugu) responses.
// @contact.name Pashumitra Maintainers
// @contact.url https://github.com/agrovet/pashumitra
// @BasePath /

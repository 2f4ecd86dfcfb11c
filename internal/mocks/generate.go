package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DocumentSource --dir ../domain/lineup --output domain/lineup --outpkg lineupmock --filename document_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Parser --dir ../domain/lineup --output domain/lineup --outpkg lineupmock --filename parser_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/player --output domain/player --outpkg playermock --filename source_mock.go

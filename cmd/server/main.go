package main

import (
	"space-missions-api/cmd/server/commands"

	_ "space-missions-api/docs" // This is needed for swag
)

//	@title			Space Missions API
//	@version		1.0
//	@description	Scientists, planets and the missions that link them.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5555
//	@BasePath	/

func main() {
	commands.Execute()
}

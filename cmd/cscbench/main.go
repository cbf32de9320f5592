package main

// main delegates to the cobra root command.
func main() {
	Execute()
}

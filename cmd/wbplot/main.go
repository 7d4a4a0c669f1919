// Command wbplot renders chart files in the house style.
package main

func main() {
	Execute()
}

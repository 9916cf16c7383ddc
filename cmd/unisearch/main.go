// Command unisearch runs the uniform-cost and iterative-deepening search
// engines on vacuum-world instances and prints a comparison report.
package main

func main() {
	Execute()
}

// Command arenactl drives a best-fit arena allocator from workload scripts
// and prints the resulting section layout.
package main

func main() {
	execute()
}

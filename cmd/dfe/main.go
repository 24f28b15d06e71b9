// Command dfe synthesizes edge-computing scenarios and dependent-function
// workloads, and schedules them with DPE, FixDoc, or HEFT.
package main

func main() {
	Execute()
}

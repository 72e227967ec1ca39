//go:build mage

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	BIN           string = "bubblepop"
	SIM_BIN       string = "bubblesim"
	BUILD_LDFLAGS string = "-s -w"
	BUILD_TARGET  string = "."
	SIM_TARGET    string = "./cmd/bubblesim"
)

func exe(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// Build compiles the game
func Build() error {
	fmt.Println("Building...")
	ldflags := BUILD_LDFLAGS
	if runtime.GOOS == "windows" {
		ldflags += " -H=windowsgui"
	}
	return sh.RunV("go", "build", "-trimpath", "-ldflags="+ldflags, "-o", exe(BIN), BUILD_TARGET)
}

// BuildSim compiles the headless simulator
func BuildSim() error {
	fmt.Println("Building simulator...")
	return sh.RunV("go", "build", "-trimpath", "-ldflags="+BUILD_LDFLAGS, "-o", exe(SIM_BIN), SIM_TARGET)
}

// Run builds and starts the game
func Run() error {
	mg.Deps(Build)
	return sh.RunV("./" + exe(BIN))
}

// Sim runs the simulator for five minutes of game time with a CPU profile
func Sim() error {
	mg.Deps(BuildSim)
	return sh.RunV("./"+exe(SIM_BIN), "-frames", "-profile", "profiles")
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean up after yourself
func Clean() {
	fmt.Println("Cleaning...")
	os.RemoveAll(exe(BIN))
	os.RemoveAll(exe(SIM_BIN))
	os.RemoveAll("profiles")
}

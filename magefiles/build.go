//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Downloads modules and builds the demo binary.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("mod", "download"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "lumen", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs vet and the whole test suite.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

package lattice

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "lattice")

package lantern

const Version = "0.2.0"

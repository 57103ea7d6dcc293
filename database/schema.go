package database

// Schema mirrors the migrations under database/migrations. Tests execute it
// directly against in-memory databases instead of running the migration
// tooling.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    surname TEXT NOT NULL,
    password TEXT NOT NULL,
    role TEXT NOT NULL,
    address TEXT NOT NULL DEFAULT '',
    birthdate TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
    model TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    selling_price REAL NOT NULL,
    arrival_date TEXT NOT NULL,
    details TEXT NOT NULL DEFAULT '',
    quantity INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS carts (
    id TEXT PRIMARY KEY,
    customer TEXT NOT NULL,
    paid INTEGER NOT NULL DEFAULT 0,
    payment_date TEXT NOT NULL DEFAULT '',
    total REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS productInCart (
    id_cart TEXT NOT NULL,
    model TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    category TEXT NOT NULL,
    price REAL NOT NULL,
    PRIMARY KEY (id_cart, model)
);

CREATE TABLE IF NOT EXISTS reviews (
    model TEXT NOT NULL,
    username TEXT NOT NULL,
    score INTEGER NOT NULL,
    date TEXT NOT NULL,
    comment TEXT NOT NULL,
    PRIMARY KEY (model, username)
);
`

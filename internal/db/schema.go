package db

// schema is the full database schema.
//
// Four record families share the same active/deleted table layout:
// hardware ("pc"), license, accessory and stock. A soft-deleted record
// moves wholesale into its deleted_* shadow table; a record therefore
// exists in exactly one of the two tables at any time. Custody changes
// are recorded in the append-only inventory_logs table, and the
// inventory_latest view derives the current state of each item.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    first_name    TEXT NOT NULL DEFAULT '',
    last_name     TEXT NOT NULL DEFAULT '',
    email         TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    is_admin      INTEGER NOT NULL DEFAULT 0,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS lookup_items (
    id   INTEGER PRIMARY KEY,
    type TEXT NOT NULL,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS hardware_inventory (
    id            INTEGER PRIMARY KEY,
    label         TEXT NOT NULL DEFAULT '',
    factory       TEXT NOT NULL DEFAULT '',
    block         TEXT NOT NULL DEFAULT '',
    department    TEXT NOT NULL DEFAULT '',
    hardware_type TEXT NOT NULL DEFAULT '',
    computer_name TEXT NOT NULL DEFAULT '',
    brand         TEXT NOT NULL DEFAULT '',
    model         TEXT NOT NULL DEFAULT '',
    serial_no     TEXT NOT NULL DEFAULT '',
    holder_id     INTEGER,
    usage_area    TEXT NOT NULL DEFAULT '',
    machine_no    TEXT NOT NULL DEFAULT '',
    ifs_no        TEXT NOT NULL DEFAULT '',
    entry_date    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    recorded_by   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS deleted_hardware_inventory (
    id            INTEGER PRIMARY KEY,
    label         TEXT NOT NULL DEFAULT '',
    factory       TEXT NOT NULL DEFAULT '',
    block         TEXT NOT NULL DEFAULT '',
    department    TEXT NOT NULL DEFAULT '',
    hardware_type TEXT NOT NULL DEFAULT '',
    computer_name TEXT NOT NULL DEFAULT '',
    brand         TEXT NOT NULL DEFAULT '',
    model         TEXT NOT NULL DEFAULT '',
    serial_no     TEXT NOT NULL DEFAULT '',
    holder_id     INTEGER,
    usage_area    TEXT NOT NULL DEFAULT '',
    machine_no    TEXT NOT NULL DEFAULT '',
    ifs_no        TEXT NOT NULL DEFAULT '',
    entry_date    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    recorded_by   TEXT NOT NULL DEFAULT '',
    deleted_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS license_inventory (
    id            INTEGER PRIMARY KEY,
    label         TEXT NOT NULL DEFAULT '',
    department    TEXT NOT NULL DEFAULT '',
    holder_id     INTEGER,
    software_name TEXT NOT NULL DEFAULT '',
    license_key   TEXT NOT NULL DEFAULT '',
    mail_address  TEXT NOT NULL DEFAULT '',
    ifs_no        TEXT NOT NULL DEFAULT '',
    entry_date    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    recorded_by   TEXT NOT NULL DEFAULT '',
    notes         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS deleted_license_inventory (
    id            INTEGER PRIMARY KEY,
    label         TEXT NOT NULL DEFAULT '',
    department    TEXT NOT NULL DEFAULT '',
    holder_id     INTEGER,
    software_name TEXT NOT NULL DEFAULT '',
    license_key   TEXT NOT NULL DEFAULT '',
    mail_address  TEXT NOT NULL DEFAULT '',
    ifs_no        TEXT NOT NULL DEFAULT '',
    entry_date    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    recorded_by   TEXT NOT NULL DEFAULT '',
    notes         TEXT NOT NULL DEFAULT '',
    deleted_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS accessory_inventory (
    id           INTEGER PRIMARY KEY,
    product_name TEXT NOT NULL DEFAULT '',
    department   TEXT NOT NULL DEFAULT '',
    holder_id    INTEGER,
    ifs_no       TEXT NOT NULL DEFAULT '',
    entry_date   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    recorded_by  TEXT NOT NULL DEFAULT '',
    note         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS deleted_accessory_inventory (
    id           INTEGER PRIMARY KEY,
    product_name TEXT NOT NULL DEFAULT '',
    department   TEXT NOT NULL DEFAULT '',
    holder_id    INTEGER,
    ifs_no       TEXT NOT NULL DEFAULT '',
    entry_date   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    recorded_by  TEXT NOT NULL DEFAULT '',
    note         TEXT NOT NULL DEFAULT '',
    deleted_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS stock_items (
    id           INTEGER PRIMARY KEY,
    product_name TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    brand        TEXT NOT NULL DEFAULT '',
    quantity     INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    location     TEXT NOT NULL DEFAULT '',
    ifs_no       TEXT NOT NULL DEFAULT '',
    note         TEXT NOT NULL DEFAULT '',
    updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    recorded_by  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS deleted_stock_items (
    id           INTEGER PRIMARY KEY,
    product_name TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    brand        TEXT NOT NULL DEFAULT '',
    quantity     INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    location     TEXT NOT NULL DEFAULT '',
    ifs_no       TEXT NOT NULL DEFAULT '',
    note         TEXT NOT NULL DEFAULT '',
    updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    recorded_by  TEXT NOT NULL DEFAULT '',
    deleted_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS inventory_logs (
    id            INTEGER PRIMARY KEY,
    category      TEXT NOT NULL CHECK (category IN ('pc', 'license', 'accessory', 'stock')),
    item_id       INTEGER NOT NULL,
    action        TEXT NOT NULL CHECK (action IN ('assign', 'return', 'move', 'relabel')),
    old_holder_id INTEGER,
    new_holder_id INTEGER,
    old_location  TEXT,
    new_location  TEXT,
    old_label     TEXT,
    new_label     TEXT,
    note          TEXT NOT NULL DEFAULT '',
    actor_id      INTEGER NOT NULL,
    change_date   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_inventory_logs_item
    ON inventory_logs(category, item_id);

CREATE INDEX IF NOT EXISTS idx_inventory_logs_holder
    ON inventory_logs(new_holder_id);

CREATE VIEW IF NOT EXISTS inventory_latest AS
SELECT id, category, item_id, action, old_holder_id, new_holder_id,
       old_location, new_location, old_label, new_label, note, actor_id, change_date
FROM (
    SELECT l.*, ROW_NUMBER() OVER (
        PARTITION BY category, item_id
        ORDER BY change_date DESC, id DESC
    ) AS rn
    FROM inventory_logs l
)
WHERE rn = 1;

CREATE TABLE IF NOT EXISTS activity_log (
    id         INTEGER PRIMARY KEY,
    actor      TEXT NOT NULL,
    action     TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

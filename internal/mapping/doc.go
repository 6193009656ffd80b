// Package mapping provides the YAML declaration file: explicit values pinned by a human on top
// of what the automapper discovers.
//
// Declarations are applied after automapping and before conventions. Every declared value is
// written as explicit, so conventions never overwrite it.
//
// # Schema Overview
//
//	version: "1"
//	entities:
//	  - type: store.Order
//	    table: orders
//	    schema: sales
//	    lazy: false
//	    ignore: [Notes]
//	    properties:
//	      - name: TotalCents
//	        column: total_cents
//	        not_null: true
//	      - name: Status
//	        type: EnumString
//	    references:
//	      - name: Customer
//	        column: customer_id
//	        foreign_key: fk_orders_customer
//	        fetch: join
//	    components:
//	      - name: Shipping
//	        properties:
//	          - name: Zip
//	            column: ship_zip
//	            length: 10
//	    collections:
//	      - name: Products
//	        relationship: many-to-many
//	        table: order_products
//	        key: order_id
//	        inverse: true
//
// # Workflow
//
// Scaffold exports a resolved tree as a declaration file. The file is reviewed, trimmed to the
// values that must not change and fed back with Compile and Apply on the next run.
package mapping

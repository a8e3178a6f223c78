package registry

import (
	"sitegen_ai_server/internal/placeholder"
)

// Bundle is what the registry hands the file-generation driver for one
// industry: the essential file list and the template text per file.
// Template text is static content carrying placeholder tokens; all logic
// lives in the resolution pipeline.
type Bundle struct {
	EssentialFiles []string
	Templates      map[string]string
}

// Registry maps an industry onto its template bundle. Unrecognized
// industries get the generic bundle.
type Registry struct {
	bundles map[placeholder.Industry]*Bundle
	generic *Bundle
}

func New() *Registry {
	generic := genericBundle()
	return &Registry{
		bundles: map[placeholder.Industry]*Bundle{
			placeholder.IndustryCafe:       cafeBundle(),
			placeholder.IndustryRestaurant: restaurantBundle(),
		},
		generic: generic,
	}
}

// Bundle resolves the raw industry string to a template bundle.
func (r *Registry) Bundle(industry string) *Bundle {
	if b, ok := r.bundles[placeholder.ParseIndustry(industry)]; ok {
		return b
	}
	return r.generic
}

// Template returns the template text for one essential file.
func (b *Bundle) Template(filename string) (string, bool) {
	t, ok := b.Templates[filename]
	return t, ok
}

// Shared scaffold files. package.json and vite.config.ts carry no tokens on
// purpose: they exercise the pipeline's no-op fast path.
const packageJSONTemplate = `{
  "name": "generated-site",
  "private": true,
  "version": "0.0.1",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc && vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.3.1",
    "react-dom": "^18.3.1",
    "framer-motion": "^11.0.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.0",
    "tailwindcss": "^3.4.0",
    "typescript": "^5.4.0",
    "vite": "^5.2.0"
  }
}
`

const viteConfigTemplate = `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
})
`

const tailwindConfigTemplate = `import type { Config } from 'tailwindcss'

export default {
  content: ['./index.html', './src/**/*.{ts,tsx}'],
  theme: {
    extend: {
      colors: {
        primary: '#1A73E8',
        accent: '#FF6F61',
        surface: '#F9FAFB',
      },
    },
  },
  plugins: [],
} satisfies Config
`

const indexHTMLTemplate = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>[HERO_TITLE]</title>
    <meta name="description" content="[HERO_DESCRIPTION]" />
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.tsx"></script>
  </body>
</html>
`

const mainTSXTemplate = `import React from 'react'
import ReactDOM from 'react-dom/client'
import App from './App'
import './index.css'

ReactDOM.createRoot(document.getElementById('root')!).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
)
`

const heroTSXTemplate = `import { motion } from 'framer-motion'

export default function Hero() {
  return (
    <section className="relative bg-surface">
      <img src="[HERO_IMAGE_URL]" alt="[HERO_IMAGE_ALT]" className="h-96 w-full object-cover" />
      <motion.div initial={{ opacity: 0, y: 16 }} animate={{ opacity: 1, y: 0 }} className="mx-auto max-w-3xl py-12 text-center">
        <h1 className="text-4xl font-bold">[HERO_TITLE]</h1>
        <p className="mt-2 text-xl text-gray-600">[HERO_SUBTITLE]</p>
        <p className="mt-4 text-gray-500">[HERO_DESCRIPTION]</p>
        <button className="mt-6 rounded-xl bg-primary px-6 py-3 text-white shadow">[ORDER_BUTTON_TEXT]</button>
      </motion.div>
    </section>
  )
}
`

const contactTSXTemplate = `export default function Contact() {
  return (
    <section className="mx-auto max-w-3xl py-12">
      <h2 className="text-3xl font-semibold">[CONTACT_BUTTON_TEXT]</h2>
      <ul className="mt-4 space-y-2 text-gray-600">
        <li>Phone: [CONTACT_PHONE]</li>
        <li>Email: [CONTACT_EMAIL]</li>
        <li>Address: [CONTACT_ADDRESS]</li>
        <li>Hours: [CONTACT_HOURS]</li>
      </ul>
    </section>
  )
}
`

const featuresTSXTemplate = `export default function Features() {
  return (
    <section className="mx-auto max-w-5xl py-12">
      <h2 className="text-3xl font-semibold">[FEATURED_TITLE]</h2>
      <div className="mt-6 grid gap-6 md:grid-cols-3">
        <div className="rounded-2xl bg-white p-6 shadow-sm">
          <h3 className="font-semibold">[FEATURE_1_TITLE]</h3>
          <p className="mt-2 text-gray-500">[FEATURE_1_DESCRIPTION]</p>
        </div>
        <div className="rounded-2xl bg-white p-6 shadow-sm">
          <h3 className="font-semibold">[FEATURE_2_TITLE]</h3>
          <p className="mt-2 text-gray-500">[FEATURE_2_DESCRIPTION]</p>
        </div>
        <div className="rounded-2xl bg-white p-6 shadow-sm">
          <h3 className="font-semibold">[FEATURE_3_TITLE]</h3>
          <p className="mt-2 text-gray-500">[FEATURE_3_DESCRIPTION]</p>
        </div>
      </div>
    </section>
  )
}
`

const menuTSXTemplate = `export default function Menu() {
  const items = [
    { name: '[MENU_ITEM_1_NAME]', description: '[MENU_ITEM_1_DESCRIPTION]', price: '[MENU_ITEM_1_PRICE]', image: '[MENU_IMAGE_URL_1]' },
    { name: '[MENU_ITEM_2_NAME]', description: '[MENU_ITEM_2_DESCRIPTION]', price: '[MENU_ITEM_2_PRICE]', image: '[MENU_IMAGE_URL_2]' },
    { name: '[MENU_ITEM_3_NAME]', description: '[MENU_ITEM_3_DESCRIPTION]', price: '[MENU_ITEM_3_PRICE]', image: '[MENU_IMAGE_URL_3]' },
  ]
  return (
    <section className="mx-auto max-w-5xl py-12">
      <h2 className="text-3xl font-semibold">[MENU_BUTTON_TEXT]</h2>
      <div className="mt-6 grid gap-6 md:grid-cols-3">
        {items.map((item) => (
          <div key={item.name} className="overflow-hidden rounded-2xl bg-white shadow-sm">
            <img src={item.image} alt="[MENU_IMAGE_ALT]" className="h-40 w-full object-cover" />
            <div className="p-4">
              <div className="flex justify-between">
                <h3 className="font-semibold">{item.name}</h3>
                <span className="text-accent">{item.price}</span>
              </div>
              <p className="mt-1 text-sm text-gray-500">{item.description}</p>
            </div>
          </div>
        ))}
      </div>
    </section>
  )
}
`

const cafeAppTSXTemplate = `import Hero from './components/Hero'
import Menu from './components/Menu'
import Features from './components/Features'
import Contact from './components/Contact'

export default function App() {
  return (
    <main className="bg-surface font-sans">
      <Hero />
      <section className="mx-auto max-w-3xl py-6 text-center">
        <img src="[COFFEE_IMAGE_URL]" alt="[COFFEE_IMAGE_ALT]" className="mx-auto h-64 rounded-2xl object-cover" />
      </section>
      <Menu />
      <Features />
      <Contact />
    </main>
  )
}
`

const genericAppTSXTemplate = `import Hero from './components/Hero'
import Features from './components/Features'
import Contact from './components/Contact'

export default function App() {
  return (
    <main className="bg-surface font-sans">
      <Hero />
      <Features />
      <Contact />
    </main>
  )
}
`

func sharedTemplates() map[string]string {
	return map[string]string{
		"package.json":                packageJSONTemplate,
		"vite.config.ts":              viteConfigTemplate,
		"tailwind.config.ts":          tailwindConfigTemplate,
		"index.html":                  indexHTMLTemplate,
		"src/main.tsx":                mainTSXTemplate,
		"src/components/Hero.tsx":     heroTSXTemplate,
		"src/components/Features.tsx": featuresTSXTemplate,
		"src/components/Contact.tsx":  contactTSXTemplate,
	}
}

func sharedFiles() []string {
	return []string{
		"package.json",
		"vite.config.ts",
		"tailwind.config.ts",
		"index.html",
		"src/main.tsx",
		"src/components/Hero.tsx",
		"src/components/Features.tsx",
		"src/components/Contact.tsx",
	}
}

func cafeBundle() *Bundle {
	templates := sharedTemplates()
	templates["src/App.tsx"] = cafeAppTSXTemplate
	templates["src/components/Menu.tsx"] = menuTSXTemplate
	return &Bundle{
		EssentialFiles: append(sharedFiles(), "src/App.tsx", "src/components/Menu.tsx"),
		Templates:      templates,
	}
}

func restaurantBundle() *Bundle {
	templates := sharedTemplates()
	templates["src/App.tsx"] = genericAppTSXTemplate
	templates["src/components/Menu.tsx"] = menuTSXTemplate
	return &Bundle{
		EssentialFiles: append(sharedFiles(), "src/App.tsx", "src/components/Menu.tsx"),
		Templates:      templates,
	}
}

func genericBundle() *Bundle {
	templates := sharedTemplates()
	templates["src/App.tsx"] = genericAppTSXTemplate
	return &Bundle{
		EssentialFiles: append(sharedFiles(), "src/App.tsx"),
		Templates:      templates,
	}
}
